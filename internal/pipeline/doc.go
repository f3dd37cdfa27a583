// Package pipeline turns the free-form notes of a timesheet into an HTML
// fragment.
package pipeline
