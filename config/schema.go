package config

import (
	"encoding/json"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/invopop/jsonschema"
)

const addressPattern = "^0x[0-9a-fA-F]{40}$"

// JSONSchema returns the schema of the configuration file, keyed as the TOML fields
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
		FieldNameTag:              "mapstructure",
		Mapper:                    schemaMapper,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "depositkit config file"
	schema.Description = "Configuration of a depositkit run"
	return schema
}

// JSONSchemaString is the indented JSON form of JSONSchema
func JSONSchemaString() (string, error) {
	out, err := json.MarshalIndent(JSONSchema(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func schemaMapper(t reflect.Type) *jsonschema.Schema {
	switch t {
	case reflect.TypeOf(common.Address{}):
		return &jsonschema.Schema{
			Type:    "string",
			Title:   "Address",
			Pattern: addressPattern,
			Examples: []interface{}{
				"0xf446986e261E84aB2A55159F3Fba60F7E8AeDdAF",
			},
		}
	case reflect.TypeOf(common.Hash{}):
		return &jsonschema.Schema{Type: "string", Pattern: "^0x[0-9a-fA-F]{64}$"}
	case reflect.TypeOf(big.Int{}), reflect.TypeOf(&big.Int{}):
		return &jsonschema.Schema{Type: "string", Pattern: "^(0x[0-9a-fA-F]+|[0-9]+)$"}
	}
	return nil
}
