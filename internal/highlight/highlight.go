package highlight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
)

const (
	// Dir is where rune unit definitions live, relative to the mod root.
	Dir = "data/hd/items/misc/rune"

	beamParticles = "data/hd/vfx/particles/overlays/object/horadric_light/fx_horadric_light.particles"
	firstEntityID = 9000
)

type Path struct {
	Path string `json:"path"`
}

type Dependencies struct {
	Particles     []Path `json:"particles"`
	Models        []Path `json:"models"`
	Skeletons     []Path `json:"skeletons"`
	Animations    []Path `json:"animations"`
	Textures      []Path `json:"textures"`
	Physics       []Path `json:"physics"`
	JSON          []Path `json:"json"`
	VariantData   []Path `json:"variantdata"`
	ObjectEffects []Path `json:"objecteffects"`
	Other         []Path `json:"other"`
}

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Component is the union of the component kinds used by rune definitions.
// Fields that do not apply to a kind stay empty and are omitted.
type Component struct {
	Type string `json:"type"`
	Name string `json:"name"`

	Position            *Vector     `json:"position,omitempty"`
	Orientation         *Quaternion `json:"orientation,omitempty"`
	Scale               *Vector     `json:"scale,omitempty"`
	InheritOnlyPosition *bool       `json:"inheritOnlyPosition,omitempty"`

	Filename          string `json:"filename,omitempty"`
	VisibleLayers     int    `json:"visibleLayers,omitempty"`
	LightMask         int    `json:"lightMask,omitempty"`
	ShadowMask        int    `json:"shadowMask,omitempty"`
	HardKillOnDestroy *bool  `json:"hardKillOnDestroy,omitempty"`
}

type Entity struct {
	Type       string      `json:"type"`
	Name       string      `json:"name"`
	ID         int         `json:"id"`
	Components []Component `json:"components"`
}

// UnitDefinition is the document the game loads for a dropped rune.
type UnitDefinition struct {
	Dependencies Dependencies `json:"dependencies"`
	Type         string       `json:"type"`
	Name         string       `json:"name"`
	Entities     []Entity     `json:"entities"`
}

// FileName returns the definition file name of the rune with the given code,
// e.g. "zod_rune.json".
func FileName(code string) string {
	return code + "_rune.json"
}

// RelPath is FileName joined to Dir, slash separated.
func RelPath(code string) string {
	return path.Join(Dir, FileName(code))
}

// Definition builds the unit definition of rune number n. Highlighted runes
// get an extra light beam entity on top of the model.
func Definition(code string, n int, highlighted bool) UnitDefinition {
	name := code + "_rune"
	model := path.Join(Dir, name+".model")
	id := firstEntityID + n*10

	def := UnitDefinition{
		Dependencies: emptyDependencies(),
		Type:         "UnitDefinition",
		Name:         name,
		Entities: []Entity{{
			Type: "Entity",
			Name: "entity_root",
			ID:   id,
			Components: []Component{
				transform("component_transform1"),
				{
					Type:          "ModelDefinitionComponent",
					Name:          "component_model1",
					Filename:      model,
					VisibleLayers: 1,
					LightMask:     19,
					ShadowMask:    1,
				},
			},
		}},
	}
	def.Dependencies.Models = []Path{{Path: model}}

	if !highlighted {
		return def
	}

	def.Dependencies.Particles = []Path{{Path: beamParticles}}
	def.Entities = append(def.Entities, Entity{
		Type: "Entity",
		Name: "entity_beam",
		ID:   id + 1,
		Components: []Component{
			transform("component_transform1"),
			{
				Type:              "VfxDefinitionComponent",
				Name:              "component_vfx1",
				Filename:          beamParticles,
				HardKillOnDestroy: boolPtr(false),
			},
		},
	})

	return def
}

// Encode serializes def the way the game ships its definitions.
func Encode(def UnitDefinition) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(def); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", def.Name, err)
	}

	return buf.Bytes(), nil
}

func emptyDependencies() Dependencies {
	return Dependencies{
		Particles:     []Path{},
		Models:        []Path{},
		Skeletons:     []Path{},
		Animations:    []Path{},
		Textures:      []Path{},
		Physics:       []Path{},
		JSON:          []Path{},
		VariantData:   []Path{},
		ObjectEffects: []Path{},
		Other:         []Path{},
	}
}

func transform(name string) Component {
	return Component{
		Type:                "TransformDefinitionComponent",
		Name:                name,
		Position:            &Vector{},
		Orientation:         &Quaternion{W: 1},
		Scale:               &Vector{X: 1, Y: 1, Z: 1},
		InheritOnlyPosition: boolPtr(false),
	}
}

func boolPtr(b bool) *bool {
	return &b
}
