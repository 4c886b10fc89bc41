// Package nems holds the core data model for coupled-model configuration:
// component entries, their processor assignments, and their attribute sets.
//
// An [Entry] describes one participating component (atmosphere, ocean,
// mediator, ...). Entries are plain data; all coupling relationships live
// in the sequence package and are resolved by [Role] lookup:
//
//	atm, err := nems.NewEntry("datm", nems.RoleATM, 0, 159, 1)
//	atm.Attributes.Set("Verbosity", nems.Int(0))
//
// Attribute sets are open: recognized option names per role are documented
// in [RecognizedAttributes], but unknown keys pass through to the emitted
// configuration verbatim.
package nems
