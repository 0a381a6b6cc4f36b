package match

// DefaultStopWords vetoes titles that match a theme keyword but are
// off-topic (sports, film titles, routine ministry statements).
var DefaultStopWords = []string{
	`бокс[её]р`, `хоккеист`, `Бессмертн`, `зв[её]здны[а-я]{0,2} войн`, `\bВойнов`, `\bПутин`,
	`велик[а-я]{2} отечествен`, `втор[а-я]{2} миров`, `Война и мир`, `Лавров`, `Песков`, `Захарова`, `МО РФ:`,
	`Минобороны РФ:`, `МИД РФ`,
}
