// Package config reads and writes the structured configuration files that
// feed a parameter set.
//
// Every supported format is parsed into the same tree of Nodes: mappings of
// named children, lists, and scalars (string, integer, float, boolean,
// null). The format is chosen from the file extension:
//   - ".yaml", ".yml": YAML (gopkg.in/yaml.v3)
//   - ".hcl", ".tf": HCL native syntax (hashicorp/hcl/v2)
//   - anything else: JSON
//
// # Basic Usage
//
//	root, err := config.Load("app.yaml")
//	if errors.Is(err, config.ErrNotFound) {
//	    // no file
//	}
//	if node, ok := root.Lookup("path", "to", "flag"); ok && node.IsScalar() {
//	    fmt.Println(node.Text())
//	}
//
// # Writing
//
// Save and Update write trees back in the format matching the extension:
//
//	tree := config.MapNode()
//	tree.Set(config.IntNode(5), "count")
//	err := config.Save("app.json", tree)
package config
