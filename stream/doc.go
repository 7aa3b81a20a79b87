// Package stream provides incremental TOON emission and consumption.
//
// [Writer] emits one array at a time against an io.Writer, declaring the
// "?" arity placeholder when the row count is unknown at header time.
// [Blocks] is the matching reader: it yields each array block as it is
// parsed, keeping at most one block in memory, and accepts "?" headers by
// counting rows.
//
// Use a deferred [Writer.Close] so the output stays syntactically complete
// on every exit path:
//
//	w := stream.NewWriter(f)
//	defer w.Close()
//
//	if err := w.BeginArray("users", []string{"id", "name"}); err != nil {
//		return err
//	}
//	for _, u := range users {
//		if err := w.WriteItem(u); err != nil {
//			return err
//		}
//	}
//	if _, err := w.EndArray(); err != nil {
//		return err
//	}
package stream
