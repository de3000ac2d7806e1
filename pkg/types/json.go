package types

// JSONMap is an arbitrary JSON object persisted through GORM's json serializer.
type JSONMap map[string]any

// StringList is a JSON-encoded string array column (photo URLs, attachments).
type StringList []string
