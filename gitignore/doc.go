// Package gitignore edits ignore-pattern files such as .gitignore,
// .dockerignore and .git/info/exclude.
//
// A PatternFile is bound to one existing file. Every operation re-reads the
// file, so edits made by other programs between calls are always seen:
//
//	f, err := gitignore.New(".gitignore")
//	if err != nil {
//	    return err
//	}
//	if ok, _ := f.ContainsPattern("/bin/"); !ok {
//	    err = f.AppendPatterns([]string{"/bin/"})
//	}
//
// Patterns are compared as literal text. The line "baz/" matches the query
// "baz/" only; no glob semantics are applied.
//
// # Line Numbers
//
// Line numbers are zero-based. InsertPatternsAtLineNo accepts indexes of
// existing lines only, so it can never append to the end of the file; use
// AppendPatterns for that.
//
// # Managed Blocks
//
// SetBlock and RemoveBlock maintain a named group of patterns between marker
// comments:
//
//	# >>> tooling >>>
//	/.cache/
//	# <<< tooling <<<
//
// Writes are not atomic and there is no locking. Concurrent writers to the
// same file can lose updates.
package gitignore
