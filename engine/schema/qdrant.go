package schema

import (
	"reflect"
	"strings"

	"github.com/qdrant/go-client/qdrant"
)

// Qdrant's Filter is a protobuf message with no direct JSON-schema
// representation; pipelines that take one accept the generic structured-data
// form instead, same as dataframes.
func init() {
	RegisterUnsupportedType(goTypeName(reflect.TypeOf(qdrant.Filter{})))
}

func goTypeName(t reflect.Type) string {
	return strings.ToLower(t.Name())
}
