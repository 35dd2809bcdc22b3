package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbalance/builder"
	"github.com/katalvlaran/lvbalance/core"
	"github.com/katalvlaran/lvbalance/graphio"
)

// samplePrefix addresses a built-in sample instead of a file.
const samplePrefix = "sample:"

// loadGraph resolves arg to a graph and a display name. Arguments of the form
// "sample:NAME" load a built-in sample; anything else is a definition file.
func loadGraph(arg string) (string, *core.Graph, error) {
	if name, ok := strings.CutPrefix(arg, samplePrefix); ok {
		s, err := builder.LookupSample(name)
		if err != nil {
			return "", nil, err
		}
		g, err := s.Graph()
		if err != nil {
			return "", nil, fmt.Errorf("sample %s: %w", name, err)
		}
		return s.Name, g, nil
	}

	doc, g, err := graphio.ReadFile(arg)
	if err != nil {
		return "", nil, err
	}
	name := doc.Name
	if name == "" {
		name = arg
	}

	return name, g, nil
}
