// Package compact packs stop times into column-oriented tables.
//
// A feed with millions of stop_times.txt rows pays a heap object, a pointer
// and two string headers per row. A StopTimeTable keeps one slice per field and
// interns headsigns, and every *model.StopTime that was compacted keeps working
// through a model.StopTimeProxy view of its row.
package compact
