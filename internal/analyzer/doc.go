// Package analyzer classifies conversion inputs.
//
// [DetermineType] decides whether an input path is a plugin, an agent
// collection or a skill from fixed filesystem markers. File-level membership
// inside a plugin is not decided here: [GenerateTree] renders the directory
// and a [TreeAnalyzer] (the AI service) returns an [Analysis] listing agent
// files and skill files. [Analysis.Normalize] turns that answer into clean
// absolute paths.
package analyzer
