// Package tabgenie provides a uniform grid model for table-to-text datasets.
// Raw records from heterogeneous sources are turned into a Table of Cells
// that correctly represents merged regions, header roles and highlights,
// and every downstream view (HTML, CSV, XLSX, linear text, triples) is
// derived from that single grid.
//
// This package contains domain types, the pure grid algorithms and service
// interfaces following Ben Johnson's Standard Package Layout. It performs
// no I/O. Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, goquery/, excelize/).
package tabgenie
