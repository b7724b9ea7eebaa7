package translate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// replySchema accepts a flat array of scalars. Nested arrays or objects mean
// the model restructured the batch.
const replySchema = `{
  "type": "array",
  "items": {"type": ["string", "number", "boolean", "null"]}
}`

var compiledReplySchema = mustCompileSchema("reply.json", replySchema)

func mustCompileSchema(name, src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	return compiler.MustCompile(name)
}

// validateReply checks data against replySchema.
func validateReply(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	if err := compiledReplySchema.Validate(v); err != nil {
		return fmt.Errorf("reply does not match schema: %w", err)
	}
	return nil
}
