package slug

import (
	"fmt"
	"regexp"
	"strings"
)

// cyrillicToLatin maps Cyrillic characters to Latin transliteration
var cyrillicToLatin = map[rune]string{
	'а': "a", 'А': "a",
	'б': "b", 'Б': "b",
	'в': "v", 'В': "v",
	'г': "g", 'Г': "g",
	'д': "d", 'Д': "d",
	'е': "e", 'Е': "e",
	'ё': "e", 'Ё': "e",
	'ж': "zh", 'Ж': "zh",
	'з': "z", 'З': "z",
	'и': "i", 'И': "i",
	'й': "y", 'Й': "y",
	'к': "k", 'К': "k",
	'л': "l", 'Л': "l",
	'м': "m", 'М': "m",
	'н': "n", 'Н': "n",
	'о': "o", 'О': "o",
	'п': "p", 'П': "p",
	'р': "r", 'Р': "r",
	'с': "s", 'С': "s",
	'т': "t", 'Т': "t",
	'у': "u", 'У': "u",
	'ф': "f", 'Ф': "f",
	'х': "h", 'Х': "h",
	'ц': "c", 'Ц': "c",
	'ч': "ch", 'Ч': "ch",
	'ш': "sh", 'Ш': "sh",
	'щ': "sh", 'Щ': "sh",
	'ъ': "", 'Ъ': "",
	'ы': "y", 'Ы': "y",
	'ь': "", 'Ь': "",
	'э': "e", 'Э': "e",
	'ю': "iu", 'Ю': "iu",
	'я': "ia", 'Я': "ia",
}

var nonAlphaRegex = regexp.MustCompile(`[^a-zA-Z ]+`)

// GenerateFreelancerSlug generates a URL-friendly slug from a freelancer name
// and a unique suffix (the first segment of the freelancer UUID).
// Example: "Иван Петров" + "9f8a3c21" -> "ivan-petrov-9f8a3c21"
func GenerateFreelancerSlug(name, suffix string) string {
	// Transliterate Cyrillic to Latin
	var result strings.Builder
	for _, char := range name {
		if latinChar, exists := cyrillicToLatin[char]; exists {
			result.WriteString(latinChar)
		} else {
			result.WriteRune(char)
		}
	}

	slug := result.String()

	// Remove non-alphabetic characters (except spaces)
	slug = nonAlphaRegex.ReplaceAllString(slug, "")

	// Collapse runs of spaces before replacing with dashes
	slug = strings.Join(strings.Fields(slug), "-")

	if slug == "" {
		slug = "freelancer"
	}

	return strings.ToLower(fmt.Sprintf("%s-%s", slug, suffix))
}
