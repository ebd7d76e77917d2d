package roadmap

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/geom"
)

// description is the on-disk shape of a map. Roads is kept as a raw node
// because it may be written either as a mapping (id → neighbors) or as a
// sequence indexed by vertex id.
type description struct {
	Intersections map[string][]float64 `yaml:"intersections"`
	Roads         yaml.Node            `yaml:"roads"`
}

// Decode reads a YAML (or JSON) map description from r and builds a Map.
//
//	intersections:      # id → [x, y]
//	  0: [0.78, 0.49]
//	roads:              # id → neighbor ids, or a list indexed by id
//	  0: [36, 34, 31]
//
// Malformed input yields ErrBadDescription; structural problems are
// reported by NewMap.
func Decode(r io.Reader) (*Map, error) {
	var desc description
	if err := yaml.NewDecoder(r).Decode(&desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDescription, err)
	}

	coords := make(map[int]geom.Coordinate, len(desc.Intersections))
	for key, xy := range desc.Intersections {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: intersection id %q", ErrBadDescription, key)
		}
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: intersection %d has %d coordinates, want 2",
				ErrBadDescription, id, len(xy))
		}
		coords[id] = geom.Coordinate{X: xy[0], Y: xy[1]}
	}

	roads, err := decodeRoads(&desc.Roads)
	if err != nil {
		return nil, err
	}

	return NewMap(coords, roads)
}

func decodeRoads(node *yaml.Node) (map[int][]int, error) {
	roads := make(map[int][]int)
	switch node.Kind {
	case 0:
		// no roads key
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return nil, fmt.Errorf("%w: roads must be a mapping or a sequence", ErrBadDescription)
		}
	case yaml.MappingNode:
		var byID map[string][]int
		if err := node.Decode(&byID); err != nil {
			return nil, fmt.Errorf("%w: roads: %v", ErrBadDescription, err)
		}
		for key, list := range byID {
			id, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("%w: road id %q", ErrBadDescription, key)
			}
			roads[id] = list
		}
	case yaml.SequenceNode:
		var byIndex [][]int
		if err := node.Decode(&byIndex); err != nil {
			return nil, fmt.Errorf("%w: roads: %v", ErrBadDescription, err)
		}
		for id, list := range byIndex {
			roads[id] = list
		}
	default:
		return nil, fmt.Errorf("%w: roads must be a mapping or a sequence", ErrBadDescription)
	}

	return roads, nil
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("roadmap: load %s: %w", path, err)
	}

	return m, nil
}
