// Package registry provides a small generic registry used to instantiate
// interchangeable variants by name. Each variant is identified by a key string
// and built by a constructor that receives a map of raw settings. Constructors
// decode the settings into typed structs and return the concrete
// implementation.
//
// Example usage:
//
//	reg := registry.New[io.Reader]()
//	reg.Register("file", func(conf map[string]any) (io.Reader, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := registry.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return os.Open(c.Path)
//	})
//	r, err := reg.Create("file", map[string]any{"path": "foo"})
package registry
