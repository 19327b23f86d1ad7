// Package registry maps pipeline names to the code that builds them.
//
// Each pipeline lives in its own module package and registers itself through
// the Module interface. At startup the application registers every compiled-in
// module, validates the result and later looks pipelines up by the name given
// on the command line.
package registry
