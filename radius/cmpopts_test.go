package radius

import "github.com/google/go-cmp/cmp"

// cmpAllowDictionaryInternals lets cmp.Diff walk into Descriptor and Vendor
// values in test assertions without panicking on their unexported fields.
var cmpAllowDictionaryInternals = cmp.AllowUnexported(Descriptor{}, Vendor{})
