// Package textcase rewrites text into common letter-case and identifier conventions such as
// Title Case, camelCase and snake_case. Every conversion is pure and deterministic.
package textcase
