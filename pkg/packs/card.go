package packs

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/arthur-debert/hashdo/pkg/errors"
	"github.com/arthur-debert/hashdo/pkg/types"
	"github.com/bytedance/sonic"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema/card.schema.json
var cardSchemaBytes []byte

var (
	cardSchema     *jsonschema.Schema
	cardSchemaOnce sync.Once
	cardSchemaErr  error
)

// getCardSchema compiles the embedded card schema once
func getCardSchema() (*jsonschema.Schema, error) {
	cardSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(cardSchemaBytes))
		if err != nil {
			cardSchemaErr = fmt.Errorf("unmarshaling card schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("card.schema.json", doc); err != nil {
			cardSchemaErr = fmt.Errorf("adding card schema resource: %w", err)
			return
		}
		cardSchema, cardSchemaErr = c.Compile("card.schema.json")
		if cardSchemaErr != nil {
			cardSchemaErr = fmt.Errorf("compiling card schema: %w", cardSchemaErr)
		}
	})
	return cardSchema, cardSchemaErr
}

// LoadCardDefinitionFS reads a card definition file and decodes it
func LoadCardDefinitionFS(file types.CardFile, filesystem types.FS) (*types.CardDefinition, error) {
	data, err := filesystem.ReadFile(file.Path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCardLoad, "cannot read card definition").
			WithDetail("card", file.Key).
			WithDetail("path", file.Path)
	}

	def, err := ParseCardDefinition(data, file.Format)
	if err != nil {
		if hashdoErr, ok := err.(*errors.HashdoError); ok {
			hashdoErr.WithDetail("card", file.Key).WithDetail("path", file.Path)
		}
		return nil, err
	}
	return def, nil
}

// ParseCardDefinition decodes a card definition document in the given format
// and validates it against the card schema.
func ParseCardDefinition(data []byte, format types.CardFormat) (*types.CardDefinition, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCardLoad, "failed to parse %s card definition", format)
	}

	if err := validateCardDocument(doc); err != nil {
		return nil, err
	}

	// The schema guarantees an object with a string name.
	fields := doc.(map[string]interface{})
	return &types.CardDefinition{
		Name:        fields["name"].(string),
		Description: optionalString(fields["description"]),
		Icon:        optionalString(fields["icon"]),
		Inputs:      fields["inputs"],
	}, nil
}

func decodeDocument(data []byte, format types.CardFormat) (interface{}, error) {
	var doc interface{}
	switch format {
	case types.CardFormatJSON:
		if err := sonic.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case types.CardFormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		doc = normalizeYAML(doc)
	case types.CardFormatTOML:
		var table map[string]interface{}
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		doc = table
	default:
		return nil, fmt.Errorf("unsupported card format %q", format)
	}
	return doc, nil
}

// normalizeYAML converts mappings with non-string keys, which yaml.v3
// decodes to map[interface{}]interface{}, into string-keyed maps.
func normalizeYAML(v interface{}) interface{} {
	switch node := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(node))
		for k, val := range node {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case map[string]interface{}:
		for k, val := range node {
			node[k] = normalizeYAML(val)
		}
		return node
	case []interface{}:
		for i, val := range node {
			node[i] = normalizeYAML(val)
		}
		return node
	default:
		return v
	}
}

// validateCardDocument checks a decoded document against the card schema.
// Documents are round-tripped through JSON so YAML and TOML values are
// validated with the same types as JSON ones.
func validateCardDocument(doc interface{}) error {
	schema, err := getCardSchema()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "card schema unavailable")
	}

	jsonData, err := sonic.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrCardInvalid, "card definition is not representable as JSON")
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return errors.Wrap(err, errors.ErrCardInvalid, "card definition is not representable as JSON")
	}

	if err := schema.Validate(inst); err != nil {
		return errors.Wrap(err, errors.ErrCardInvalid, "card definition does not match schema")
	}

	if _, ok := doc.(map[string]interface{}); !ok {
		return errors.Newf(errors.ErrCardInvalid, "card definition decoded to %T, want a mapping", doc)
	}
	return nil
}

func optionalString(v interface{}) string {
	s, _ := v.(string)
	return s
}
