package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatTOML
	}
}

// decode parses data and returns the keys it did not recognise.
func decode(path string, data []byte) (*User, []string, error) {
	var u User
	switch formatOf(path) {
	case formatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, nil, err
		}
		if node.Kind == 0 {
			// Empty document.
			return &u, nil, nil
		}
		if err := node.Decode(&u); err != nil {
			return nil, nil, err
		}
		return &u, unknownYAMLKeys(&node), nil
	default:
		md, err := toml.Decode(string(data), &u)
		if err != nil {
			return nil, nil, err
		}
		var unknown []string
		for _, key := range md.Undecoded() {
			unknown = append(unknown, key.String())
		}
		return &u, unknown, nil
	}
}

func encode(path string, u *User) ([]byte, error) {
	switch formatOf(path) {
	case formatYAML:
		return yaml.Marshal(u)
	default:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(u); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

var knownRemoteKeys = map[string]bool{
	"host":                true,
	"credentials_command": true,
	"issue_tracker_type":  true,
	"issue_tracker_url":   true,
}

func unknownYAMLKeys(doc *yaml.Node) []string {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	var unknown []string
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		if key != "remotes" {
			unknown = append(unknown, key)
			continue
		}
		if val.Kind != yaml.SequenceNode {
			continue
		}
		for n, entry := range val.Content {
			if entry.Kind != yaml.MappingNode {
				continue
			}
			for j := 0; j+1 < len(entry.Content); j += 2 {
				if k := entry.Content[j].Value; !knownRemoteKeys[k] {
					unknown = append(unknown, fmt.Sprintf("remotes[%d].%s", n, k))
				}
			}
		}
	}
	sort.Strings(unknown)
	return unknown
}
