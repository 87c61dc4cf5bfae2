package corpus

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ExtractText streams an XML document and concatenates its character data,
// separated by single spaces. Markup carries no weight for ranking; only the
// text between tags is indexed.
func ExtractText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var content strings.Builder
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if chars, ok := token.(xml.CharData); ok {
			content.Write(chars)
			content.WriteByte(' ')
		}
	}
	return content.String(), nil
}
