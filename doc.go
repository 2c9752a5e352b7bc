// Package ignorefile decides whether filesystem paths are excluded by
// gitignore-style pattern files.
//
// Patterns follow the familiar ignore-file convention: one pattern per
// line, # comments, ! negation, /-anchoring, and ** recursive wildcards.
// Later rules override earlier ones, so a negated rule can re-include a
// path excluded above it.
//
// Features:
//   - Literal and wildcard patterns (*.log, target/f*)
//   - Recursive wildcards (**/foo, abc/**, a/**/b)
//   - Anchored patterns (/build matches only at the root level)
//   - Negation patterns (!important.log)
//   - Last-match-wins resolution across the whole rule list
//   - Immutable rule sets, safe for concurrent queries
//
// Usage:
//
//	rs, err := ignorefile.FromLines([]string{"target", "!target/keep.txt"}, "/home/user/proj")
//	if err != nil {
//	    // a pattern failed to compile
//	}
//
//	if rs.IsExcluded("/home/user/proj/target/blah.txt") {
//	    // path is ignored
//	}
//
// To discover the governing ignore file for a directory and load it in
// one step:
//
//	if rs, ok := ignorefile.LocateAndLoad(startDir); ok {
//	    // rs.Root() is the directory containing the loaded file
//	}
//
// For scanners that query many directories repeatedly, Cache memoizes
// compiled rule sets with LRU eviction.
package ignorefile
