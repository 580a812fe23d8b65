package schema

const ProductSchemaTextV1 = `{
	"type": "record",
	"namespace": "catalog",
	"name": "product",
	"fields" : [
		{"name": "id", "type": "string"},
		{"name": "name", "type": "string"},
		{"name": "description", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "discount", "type": "int"},
		{"name": "images", "type": {"type": "array", "items": "string"}},
		{"name": "category", "type": "string"},
		{"name": "stock", "type": "int"},
		{"name": "rating", "type": "double"},
		{"name": "review_count", "type": "int"},
		{"name": "featured", "type": "int"},
		{"name": "age_range", "type": {"type": "array", "items": "string"}},
		{"name": "created_at", "type": "string"},
		{"name": "attributes", "type": {"type": "map", "values": "string"}}
	]
}`

// ProductV1 carries a catalog product on the wire. CreatedAt is RFC 3339.
type ProductV1 struct {
	ID          string            `avro:"id"`
	Name        string            `avro:"name"`
	Description string            `avro:"description"`
	Price       float64           `avro:"price"`
	Discount    int               `avro:"discount"`
	Images      []string          `avro:"images"`
	Category    string            `avro:"category"`
	Stock       int               `avro:"stock"`
	Rating      float64           `avro:"rating"`
	ReviewCount int               `avro:"review_count"`
	Featured    int               `avro:"featured"`
	AgeRange    []string          `avro:"age_range"`
	CreatedAt   string            `avro:"created_at"`
	Attributes  map[string]string `avro:"attributes"`
}
