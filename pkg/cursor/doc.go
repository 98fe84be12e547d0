// Package cursor provides a movable read/write head over a caller-owned,
// fixed-size byte buffer.
//
// # Overview
//
// A Cursor tracks an offset into a borrowed []byte and offers bounds-checked,
// zero-copy access to raw byte runs, fixed-width unsigned integers (8, 16,
// 24, 32 and 64 bits, either byte order), UTF-8 text and NUL-terminated
// fields. It is meant for hand-written binary codecs: packet headers,
// length-prefixed fields, TLV records and the like.
//
//	c := cursor.New(packet)
//	version, err := c.ReadUint8()
//	if err != nil {
//	    return err
//	}
//	length, err := c.ReadUint16(false) // network order
//	if err != nil {
//	    return err
//	}
//	body, err := c.Read(int(length))
//
// # Get, Read, Set, Write
//
// Get and Set variants never move the cursor. Read and Write variants are
// exactly Get or Set followed by advancing the offset by the number of bytes
// consumed or produced, and only on success. A failed operation leaves the
// offset where it was. SetNulled and SetNulledString write and then restore
// the offset they started from.
//
// # Errors
//
// Every fallible operation returns an error; its MustX twin panics with the
// same error instead. Errors are *Error values carrying the offset, buffer
// length and requested size, classified by ErrKind:
//
//   - ErrKindReadLengthOverflow: a read needs more bytes than remain
//   - ErrKindReadNullOverflow: no zero byte before the end of the buffer
//   - ErrKindWriteLengthOverflow: a write needs more bytes than remain
//   - ErrKindReadUnknown, ErrKindWriteUnknown: accessor-level failures
//
// Integer accessors report running out of bytes as ReadUnknown/WriteUnknown
// wrapping the corresponding length overflow, so errors.Is matches either
// sentinel. Text encode failures, including an encoded string that does not
// fit, are WriteUnknown.
//
// # Aliasing
//
// Windows returned by Get, Read, GetNulled, ReadNulled, Before, After and the
// chunk iterators alias the buffer. Writing to them writes to the buffer, and
// they must not be used after the buffer's owner releases it (for example
// after unmapping a file).
package cursor
