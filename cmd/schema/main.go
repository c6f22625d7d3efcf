package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"terminus-veil/pkg/api"
)

// protocol объединяет обе стороны обмена, чтобы схема была одним файлом.
type protocol struct {
	Command  api.ClientCommand    `json:"command" jsonschema:"description=Message sent by the client"`
	Response api.ServerResponse   `json:"response" jsonschema:"description=Snapshot sent by the server after every command"`
	Move     api.DirectionPayload `json:"move,omitempty" jsonschema:"description=Payload of MOVE"`
	Use      api.ItemPayload      `json:"use,omitempty" jsonschema:"description=Payload of USE_ITEM"`
	Select   api.SelectPayload    `json:"select,omitempty" jsonschema:"description=Payload of SELECT"`
	Confirm  api.ConfirmPayload   `json:"confirm,omitempty" jsonschema:"description=Payload of CONFIRM"`
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema (stdout if empty)")
	flag.Parse()

	schema := buildSchema()

	if outPath == "" {
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if err := writeSchema(outPath, schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(protocol))
	schema.Title = "Terminus Veil wire protocol"
	schema.Description = "WebSocket messages exchanged with the game server"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	return os.Rename(tmpPath, outPath)
}
