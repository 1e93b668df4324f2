// Package links repairs relative markdown links inside a generated skill.
//
// A converted skill moves files around: workflows land under
// references/workflows/ and extracted blocks under references/ or assets/.
// Links that pointed at the old layout no longer resolve. Reconcile walks
// every markdown file below a directory and, for each broken relative link,
// points it at the first file in the tree with the same base name. When no
// such file exists the link markup is replaced by its label followed by
// "(link removed)".
package links
