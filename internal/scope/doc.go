// Package scope converts between lists of permission scope identifiers and
// the fixed-width bit-string the remote API expects in its "scopes" field.
//
// Bit i of the string is '1' iff the scope at index i of the table is
// granted. The table order is the wire contract: new scopes are only ever
// appended, and decoding tolerates strings that are shorter or longer than
// the table so clients of different versions keep talking to one server.
package scope
