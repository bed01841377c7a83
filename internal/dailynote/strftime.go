package dailynote

import (
	"fmt"
	"strings"
	"time"
)

// FormatLocation expands a note location template such as
// "daily/{now:%Y}/{now:%Y-%m-%d}.md" for the given time. Only the "now"
// field is recognized; any other field name is an error. "{{" and "}}"
// escape literal braces. A bare {now} renders as the date.
func FormatLocation(template string, now time.Time) (string, error) {
	var b strings.Builder
	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unclosed field in location template %q", template)
			}
			expanded, err := expandField(template[i+1:i+end], now)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("stray '}' in location template %q", template)
		default:
			b.WriteByte(template[i])
			i++
		}
	}
	return b.String(), nil
}

func expandField(field string, now time.Time) (string, error) {
	name, spec, hasSpec := strings.Cut(field, ":")
	if name != "now" {
		return "", fmt.Errorf("invalid field name %q in location template", name)
	}
	if !hasSpec || spec == "" {
		return now.Format("2006-01-02"), nil
	}
	return formatStrftime(now, spec), nil
}

// formatStrftime renders the strftime directives that show up in note
// locations. Unrecognized directives pass through unchanged, matching
// how most strftime implementations behave.
func formatStrftime(t time.Time, spec string) string {
	var b strings.Builder
	for i := 0; i < len(spec); i++ {
		if spec[i] != '%' || i+1 >= len(spec) {
			b.WriteByte(spec[i])
			continue
		}
		i++
		switch spec[i] {
		case 'Y':
			b.WriteString(t.Format("2006"))
		case 'y':
			b.WriteString(t.Format("06"))
		case 'm':
			b.WriteString(t.Format("01"))
		case 'd':
			b.WriteString(t.Format("02"))
		case 'H':
			b.WriteString(t.Format("15"))
		case 'I':
			b.WriteString(t.Format("03"))
		case 'M':
			b.WriteString(t.Format("04"))
		case 'S':
			b.WriteString(t.Format("05"))
		case 'p':
			b.WriteString(t.Format("PM"))
		case 'a':
			b.WriteString(t.Format("Mon"))
		case 'A':
			b.WriteString(t.Format("Monday"))
		case 'b':
			b.WriteString(t.Format("Jan"))
		case 'B':
			b.WriteString(t.Format("January"))
		case 'j':
			fmt.Fprintf(&b, "%03d", t.YearDay())
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(spec[i])
		}
	}
	return b.String()
}
