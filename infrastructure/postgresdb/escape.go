package postgresdb

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	dangerousChars    = regexp.MustCompile(`[;'"\\()]`)
	identifierPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	likeEscaper       = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// QuoteIdentifier validates and quotes an SQL identifier. It accepts a
// column, a schema-qualified name ("schema.table") and an optional alias
// ("column alias").
func QuoteIdentifier(name string) (string, error) {
	if dangerousChars.MatchString(name) {
		return "", fmt.Errorf("identifier contains dangerous characters: %s", name)
	}

	parts := strings.Split(name, " ")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid identifier format (too many parts): %s", name)
	}

	quoted, err := quoteQualified(parts[0])
	if err != nil {
		return "", err
	}

	if len(parts) == 2 {
		if !identifierPattern.MatchString(parts[1]) {
			return "", fmt.Errorf("invalid identifier alias: %s", parts[1])
		}
		quoted += fmt.Sprintf(` "%s"`, parts[1])
	}

	return quoted, nil
}

func quoteQualified(name string) (string, error) {
	segments := strings.Split(name, ".")
	if len(segments) > 2 {
		return "", fmt.Errorf("invalid identifier format (too many segments): %s", name)
	}

	for i, segment := range segments {
		if !identifierPattern.MatchString(segment) {
			return "", fmt.Errorf("invalid identifier segment at position %d: %s", i, segment)
		}
		segments[i] = fmt.Sprintf(`"%s"`, segment)
	}

	return strings.Join(segments, "."), nil
}

// QuoteLiteral quotes s as an SQL string literal.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// EscapeLike escapes the LIKE metacharacters in s so it matches literally
// in a pattern declared with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds a LIKE pattern matching values that contain s.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
