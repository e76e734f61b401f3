// Package domain defines core data models and interfaces shared across the app.
// It contains plain types, sentinel errors and contracts (interfaces) only.
package domain
