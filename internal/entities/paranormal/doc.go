// Package paranormal holds the canonical records of the paranormal-investigation
// game: characters, their attributes, skills, inventory, and the reference
// catalog entries they are built from.
//
// Every concept has exactly one field. Stored records that predate this shape
// are normalized once by the character repository before they reach this type.
package paranormal
