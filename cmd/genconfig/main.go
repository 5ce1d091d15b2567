// Package main implements the genconfig tool that writes iconbg.default.toml
// from config.ExampleConfig() annotated with config.ConfigDocs.
//
// It is invoked by go generate via the directive in internal/config/config.go.
package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/iconbg/internal/config"
)

func main() {
	out, err := render(config.ExampleConfig(), config.ConfigDocs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	// go generate runs from internal/config/; the embedding package is the
	// repo root.
	outPath := "../../iconbg.default.toml"
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote iconbg.default.toml\n")
}

// render encodes cfg as TOML and injects the comments and commented-out
// alternatives from docs. Documented keys the encoder omitted (omitempty
// fields at their zero value) are emitted as comments at the end of their
// section.
func render(cfg *config.Config, docs map[string]config.FieldDoc) (string, error) {
	var raw bytes.Buffer
	if err := toml.NewEncoder(&raw).Encode(cfg); err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	out := []string{
		"# ///////////////////////////////////////////////",
		"# iconbg Configuration",
		"# ///////////////////////////////////////////////",
	}
	emitted := map[string]bool{}
	section := ""

	for _, line := range strings.Split(raw.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "[[") {
			out = appendOmitted(out, section, docs, emitted)
			section = strings.Trim(trimmed, "[] ")
			out = append(out, "", fmt.Sprintf("# ///// %s /////", sectionName(section)), "")
			out = appendComment(out, docs[section].Comment)
			out = append(out, trimmed)
			continue
		}

		key, _, ok := strings.Cut(trimmed, "=")
		if !ok || strings.HasPrefix(trimmed, "#") {
			out = append(out, trimmed)
			continue
		}
		path := joinKey(section, strings.TrimSpace(key))
		emitted[path] = true

		doc := docs[path]
		out = appendComment(out, doc.Comment)
		out = append(out, trimmed)
		for _, alt := range doc.Alternatives {
			out = append(out, "# "+alt)
		}
	}
	out = appendOmitted(out, section, docs, emitted)

	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n", nil
}

// appendOmitted appends commented-out entries for documented keys of section
// that the encoder did not emit, sorted for deterministic output.
func appendOmitted(out []string, section string, docs map[string]config.FieldDoc, emitted map[string]bool) []string {
	if section == "" {
		return out
	}
	prefix := section + "."

	var omitted []string
	for path := range docs {
		rest, ok := strings.CutPrefix(path, prefix)
		if !ok || strings.Contains(rest, ".") || emitted[path] {
			continue
		}
		omitted = append(omitted, path)
	}
	sort.Strings(omitted)

	for _, path := range omitted {
		doc := docs[path]
		out = append(out, "")
		out = appendComment(out, doc.Comment)
		for _, alt := range doc.Alternatives {
			out = append(out, "# "+alt)
		}
		emitted[path] = true
	}
	return out
}

func appendComment(out []string, comment string) []string {
	if comment == "" {
		return out
	}
	for _, cl := range strings.Split(comment, "\n") {
		out = append(out, strings.TrimRight("# "+cl, " "))
	}
	return out
}

func joinKey(section, key string) string {
	if section == "" {
		return key
	}
	return section + "." + key
}

// sectionName capitalizes the last dotted segment of a section header:
// "icons" yields "Icons".
func sectionName(section string) string {
	parts := strings.Split(section, ".")
	last := parts[len(parts)-1]
	if last == "" {
		return ""
	}
	return strings.ToUpper(last[:1]) + last[1:]
}
