// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and Money amounts. Both are immutable and validated at
// construction.
package kernel
