package normalizer

// DefaultLineColors is the built-in code -> color table for the São Paulo metro and CPTM lines.
var DefaultLineColors = map[string]string{
	"1":  "Azul",
	"2":  "Verde",
	"3":  "Vermelha",
	"4":  "Amarela",
	"5":  "Lilás",
	"7":  "Rubi",
	"8":  "Diamante",
	"9":  "Esmeralda",
	"10": "Turquesa",
	"11": "Coral",
	"12": "Safira",
	"13": "Jade",
	"15": "Prata",
}
