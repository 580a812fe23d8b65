package schema

const NotificationSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "notification",
	"fields" : [
		{"name": "severity", "type": "string"},
		{"name": "message", "type": "string"}
	]
}`

type NotificationV1 struct {
	Severity string `avro:"severity"`
	Message  string `avro:"message"`
}
