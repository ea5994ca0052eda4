// Package skulist decodes lists of SKUs from text, CSV, command line
// arguments and objects in a storage bucket.
package skulist
