// Package order turns region observations from a token photo into a
// validated, priced order.
//
// The pipeline runs in one direction:
//
//  1. Assembler.Assemble resolves observations against a menu.Catalog. The
//     first recognized token of a category becomes that category's
//     Selection; a second one is recorded as a conflict Violation and closes
//     the category.
//  2. Validate appends completeness violations (missing starter or main
//     course, single-dish orders).
//  3. Summarize projects the order into a display line and a total.
//  4. Flow.Run drives the steps above, prints the transcript and, when no
//     violation was recorded, asks a Confirmer for a yes/no answer.
//
// Business-rule failures are Violations, never errors. Errors are reserved
// for collaborator failures such as a region detector that cannot read its
// image or a transcript writer that fails.
package order
