// Package solib locates dynamically loaded shared libraries by scanning
// the platform's library search path environment variable. Each platform
// contributes a compile-time table of constants (variable name, list
// separator, filename prefix and extension) so the search behavior is
// fixed at build time rather than branched at runtime.
//
// The search is an ordered first-match scan: the variable's value is
// split into candidate directories, order and empty segments preserved,
// and the first directory containing the computed filename as a regular
// file wins. There is no caching and no inspection of the file contents.
package solib
