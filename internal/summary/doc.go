// Package summary turns a finished debate transcript into a structured
// joint evaluation: a nine-criterion rubric plus free-text key points and
// advice, requested from a model as fixed-schema JSON and validated
// strictly. A non-conforming response fails the whole record; partial
// summaries are never returned.
package summary
