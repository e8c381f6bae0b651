// Where: internal/domain/template/types.go
// What: Data exposed to placeholder value templates.
// Why: Keep the render context independent from CLI and config types.
package template

// Data is the dot value seen by value templates.
type Data struct {
	Name    string
	Product string
}
