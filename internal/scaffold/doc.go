// Package scaffold writes planned components to disk. A Materializer creates
// one fresh directory per component and fills it with the rendered file set;
// Batch runs many components independently and reports each outcome.
package scaffold
