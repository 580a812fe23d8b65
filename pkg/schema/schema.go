package schema

import (
	"context"

	"github.com/twmb/franz-go/pkg/sr"
)

// A SchemaIdentifier resolves the registry id for an avro schema text.
type SchemaIdentifier interface {
	DetermineID(ctx context.Context, subject, schemaText string) (int, error)
}

type SchemaCreater struct {
	cl *sr.Client
}

func NewSchemaCreater(cl *sr.Client) SchemaCreater {
	return SchemaCreater{cl}
}

// DetermineID registers the schema under the subject, or looks it up when
// the registry already holds it, and returns the registry id.
func (c SchemaCreater) DetermineID(
	ctx context.Context, subject, schemaText string,
) (int, error) {
	s := sr.Schema{Schema: schemaText, Type: sr.TypeAvro}

	ss, err := c.cl.CreateSchema(ctx, subject, s)
	if err != nil {
		return 0, err
	}
	return ss.ID, nil
}
