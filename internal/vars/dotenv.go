package vars

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/errdef"
)

const dotEnvDefaultName = "default"

// loadDotEnvEnvironment reads a KEY=value file into a single environment.
// Lines are processed top to bottom so ${ref} interpolation only sees keys
// defined above, with the OS environment as a fallback.
func loadDotEnvEnvironment(path string) (EnvironmentSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "open env file %s", path)
	}
	defer f.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		if strings.HasPrefix(trimmed, "export ") || strings.HasPrefix(trimmed, "export\t") {
			trimmed = strings.TrimSpace(trimmed[len("export"):])
		}

		idx := strings.IndexByte(trimmed, '=')
		if idx < 0 {
			return nil, errdef.New(errdef.CodeParse, "dotenv line %d: expected KEY=value", lineNumber)
		}
		key := strings.TrimSpace(trimmed[:idx])
		if key == "" {
			return nil, errdef.New(errdef.CodeParse, "dotenv line %d: missing key", lineNumber)
		}

		value, literal, err := unquoteDotEnvValue(strings.TrimSpace(trimmed[idx+1:]), lineNumber)
		if err != nil {
			return nil, err
		}
		if !literal {
			value = interpolateDotEnvValue(value, values)
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read env file %s", path)
	}

	return EnvironmentSet{dotEnvNameFor(path): values}, nil
}

// unquoteDotEnvValue strips surrounding quotes. Single-quoted values are
// literal and skip interpolation.
func unquoteDotEnvValue(raw string, lineNumber int) (value string, literal bool, err error) {
	if raw == "" {
		return "", false, nil
	}
	quote := raw[0]
	if quote != '"' && quote != '\'' {
		return stripDotEnvComment(raw), false, nil
	}
	end := strings.LastIndexByte(raw[1:], quote)
	if end < 0 {
		return "", false, errdef.New(
			errdef.CodeParse,
			"dotenv line %d: unterminated quoted value",
			lineNumber,
		)
	}
	return raw[1 : end+1], quote == '\'', nil
}

func stripDotEnvComment(value string) string {
	for i := 1; i < len(value); i++ {
		if (value[i] == '#' || value[i] == ';') && (value[i-1] == ' ' || value[i-1] == '\t') {
			return strings.TrimSpace(value[:i])
		}
	}
	return strings.TrimSpace(value)
}

// interpolateDotEnvValue substitutes $NAME and ${NAME} in one pass; unknown
// references collapse to the empty string rather than erroring, since env
// files routinely reference launch-time OS variables.
func interpolateDotEnvValue(value string, resolved map[string]string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch == '\\' && i+1 < len(value) && value[i+1] == '$' {
			b.WriteByte('$')
			i++
			continue
		}
		if ch != '$' || i+1 >= len(value) {
			b.WriteByte(ch)
			continue
		}

		var name string
		if value[i+1] == '{' {
			end := strings.IndexByte(value[i+2:], '}')
			if end < 0 {
				b.WriteByte(ch)
				continue
			}
			name = value[i+2 : i+2+end]
			i = i + 2 + end
		} else {
			j := i + 1
			for j < len(value) && isDotEnvNameChar(value[j]) {
				j++
			}
			if j == i+1 {
				b.WriteByte(ch)
				continue
			}
			name = value[i+1 : j]
			i = j - 1
		}

		if replacement, ok := resolved[name]; ok {
			b.WriteString(replacement)
		} else if fromOS, ok := os.LookupEnv(name); ok {
			b.WriteString(fromOS)
		}
	}
	return b.String()
}

func isDotEnvNameChar(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

func dotEnvNameFor(path string) string {
	base := filepath.Base(path)
	lower := strings.ToLower(base)
	switch {
	case lower == ".env":
		return dotEnvDefaultName
	case strings.HasPrefix(lower, ".env.") && len(base) > len(".env."):
		return base[len(".env."):]
	case strings.HasSuffix(lower, ".env") && len(base) > len(".env"):
		return base[:len(base)-len(".env")]
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return dotEnvDefaultName
	}
	return stem
}
