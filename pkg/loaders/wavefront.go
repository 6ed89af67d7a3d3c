// Package loaders imports external model formats as shape trees.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/whitted-dev/go-raytracer/pkg/core"
	"github.com/whitted-dev/go-raytracer/pkg/geometry"
)

// WavefrontParser holds the state accumulated while reading a Wavefront OBJ
// file: the 1-indexed vertex and normal tables and one triangle group per
// "g" statement.
type WavefrontParser struct {
	// Ignored counts the lines the parser did not recognize.
	Ignored int

	vertices []core.Point
	normals  []core.Vector

	groups     map[string]*geometry.Group
	groupOrder []string
	selected   string
}

const defaultGroupName = "default"

func newWavefrontParser() *WavefrontParser {
	p := &WavefrontParser{
		// Dummy first entries make OBJ's 1-based indices line up.
		vertices: []core.Point{core.Origin()},
		normals:  []core.Vector{core.NewVector(0, 0, 0)},
		groups:   map[string]*geometry.Group{},
		selected: defaultGroupName,
	}
	p.groups[defaultGroupName] = geometry.NewGroup()
	p.groupOrder = append(p.groupOrder, defaultGroupName)
	return p
}

// ParseObj reads OBJ statements from r. Vertex ("v"), vertex normal ("vn"),
// face ("f") and group ("g") statements are honored; anything else is
// counted in Ignored.
func ParseObj(r io.Reader) (*WavefrontParser, error) {
	p := newWavefrontParser()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("loaders: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read obj: %w", err)
	}
	return p, nil
}

// ParseObjFile reads an OBJ file from disk.
func ParseObjFile(path string) (*WavefrontParser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", path, err)
	}
	defer f.Close()
	return ParseObj(f)
}

func (p *WavefrontParser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		point, err := parsePoint(fields[1:])
		if err != nil {
			return fmt.Errorf("vertex: %w", err)
		}
		p.vertices = append(p.vertices, point)

	case "vn":
		normal, err := parseVector(fields[1:])
		if err != nil {
			return fmt.Errorf("vertex normal: %w", err)
		}
		p.normals = append(p.normals, normal)

	case "f":
		return p.parseFace(fields[1:])

	case "g":
		if len(fields) < 2 {
			return fmt.Errorf("group statement without a name")
		}
		name := fields[1]
		if _, ok := p.groups[name]; !ok {
			p.groups[name] = geometry.NewGroup()
			p.groupOrder = append(p.groupOrder, name)
		}
		p.selected = name

	default:
		p.Ignored++
	}
	return nil
}

// parseFace triangulates a polygon face with a fan anchored on its first
// vertex. Faces carrying normal references ("v//vn" or "v/vt/vn") produce
// smooth triangles.
func (p *WavefrontParser) parseFace(refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face with %d vertices", len(refs))
	}

	group := p.groups[p.selected]

	if !strings.Contains(refs[0], "/") {
		indices := make([]int, len(refs))
		for i, ref := range refs {
			index, err := p.vertexIndex(ref)
			if err != nil {
				return err
			}
			indices[i] = index
		}
		for i := 1; i < len(indices)-1; i++ {
			group.AddChild(geometry.NewTriangle(
				p.vertices[indices[0]],
				p.vertices[indices[i]],
				p.vertices[indices[i+1]],
			))
		}
		return nil
	}

	vertexIdx := make([]int, len(refs))
	normalIdx := make([]int, len(refs))
	for i, ref := range refs {
		v, n, err := p.faceRef(ref)
		if err != nil {
			return err
		}
		vertexIdx[i], normalIdx[i] = v, n
	}
	for i := 1; i < len(refs)-1; i++ {
		group.AddChild(geometry.NewSmoothTriangle(
			p.vertices[vertexIdx[0]],
			p.vertices[vertexIdx[i]],
			p.vertices[vertexIdx[i+1]],
			p.normals[normalIdx[0]],
			p.normals[normalIdx[i]],
			p.normals[normalIdx[i+1]],
		))
	}
	return nil
}

// faceRef splits a "v/vt/vn" or "v//vn" face reference into its vertex and
// normal indices, ignoring the texture coordinate.
func (p *WavefrontParser) faceRef(ref string) (vertex, normal int, err error) {
	parts := strings.Split(ref, "/")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("malformed face reference %q", ref)
	}

	vertex, err = p.vertexIndex(parts[0])
	if err != nil {
		return 0, 0, err
	}

	normal, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("normal index %q: %w", parts[len(parts)-1], err)
	}
	if normal < 1 || normal >= len(p.normals) {
		return 0, 0, fmt.Errorf("normal index %d out of range", normal)
	}
	return vertex, normal, nil
}

func (p *WavefrontParser) vertexIndex(ref string) (int, error) {
	index, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("vertex index %q: %w", ref, err)
	}
	if index < 1 || index >= len(p.vertices) {
		return 0, fmt.Errorf("vertex index %d out of range", index)
	}
	return index, nil
}

// Group returns the named triangle group, or nil if the file had none with
// that name.
func (p *WavefrontParser) Group(name string) *geometry.Group {
	return p.groups[name]
}

// ToGroup assembles the parsed model into a single group. A file without "g"
// statements yields the default group directly; otherwise each non-empty
// named group becomes a child, in file order.
func (p *WavefrontParser) ToGroup() *geometry.Group {
	if len(p.groups) == 1 {
		return p.groups[defaultGroupName]
	}

	model := geometry.NewGroup()
	for _, name := range p.groupOrder {
		if group := p.groups[name]; len(group.Children()) > 0 {
			model.AddChild(group)
		}
	}
	return model
}

func parsePoint(fields []string) (core.Point, error) {
	coords, err := parseFloats(fields)
	if err != nil {
		return core.Point{}, err
	}
	return core.NewPoint(coords[0], coords[1], coords[2]), nil
}

func parseVector(fields []string) (core.Vector, error) {
	coords, err := parseFloats(fields)
	if err != nil {
		return core.Vector{}, err
	}
	return core.NewVector(coords[0], coords[1], coords[2]), nil
}

func parseFloats(fields []string) ([3]float64, error) {
	var coords [3]float64
	if len(fields) < 3 {
		return coords, fmt.Errorf("want 3 coordinates, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return coords, fmt.Errorf("coordinate %q: %w", fields[i], err)
		}
		coords[i] = value
	}
	return coords, nil
}
