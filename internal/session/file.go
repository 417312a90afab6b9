package session

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// writeCookies rewrites the auth.cookies value inside the auth file and
// leaves every other key, comment, and ordering untouched. The document
// is edited as a yaml.Node tree instead of a struct round-trip, which
// would strip comments. A missing file starts as an empty document.
func writeCookies(path, cookies string) error {
	var root yaml.Node

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read auth file: %w", err)
	default:
		if err := yaml.Unmarshal(raw, &root); err != nil {
			return fmt.Errorf("parse auth file: %w", err)
		}
	}

	if err := upsertCookies(&root, cookies); err != nil {
		return fmt.Errorf("rewrite auth file: %w", err)
	}

	out, err := yaml.Marshal(&root)
	if err != nil {
		return fmt.Errorf("encode auth file: %w", err)
	}

	return writeFileAtomic(path, out)
}

// upsertCookies sets auth.cookies inside the document tree, creating the
// auth mapping and the cookies key when absent.
func upsertCookies(root *yaml.Node, cookies string) error {
	// A missing or comment-only file parses to a zero node.
	if root.Kind == 0 || len(root.Content) == 0 {
		*root = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}

	document := root.Content[0]
	if document.Kind != yaml.MappingNode {
		return errors.New("auth file is not a mapping")
	}

	auth := mappingValue(document, "auth")
	if auth == nil {
		document.Content = append(document.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "auth"},
			&yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"},
		)
		auth = document.Content[len(document.Content)-1]
	}
	// "auth:" with no body parses as a null scalar.
	if auth.Kind != yaml.MappingNode {
		*auth = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}

	value := mappingValue(auth, "cookies")
	if value == nil {
		auth.Content = append(auth.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "cookies"},
			&yaml.Node{Kind: yaml.ScalarNode},
		)
		value = auth.Content[len(auth.Content)-1]
	}
	value.SetString(cookies)

	return nil
}

// mappingValue returns the value node stored under key, or nil.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// writeFileAtomic replaces path via a temp file and rename so a crash
// mid-write cannot leave a truncated auth file. Cookies are secrets,
// hence the 0600 mode.
func writeFileAtomic(path string, data []byte) error {
	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", temporaryPath, err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)

		return fmt.Errorf("write %s: %w", temporaryPath, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)

		return fmt.Errorf("sync %s: %w", temporaryPath, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)

		return fmt.Errorf("close %s: %w", temporaryPath, err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)

		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}
