// Package domain defines the recruitment data model: participants with
// their pairing roles, and the single process-wide session whose roster
// fills up to a fixed capacity before completing.
package domain
