// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var SourceTypeMUS = sourceTypeMUS{}

type sourceTypeMUS struct{}

func (s sourceTypeMUS) Marshal(v SourceType, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s sourceTypeMUS) Unmarshal(bs []byte) (v SourceType, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = SourceType(tmp)
	return
}

func (s sourceTypeMUS) Size(v SourceType) (size int) {
	return varint.Int.Size(int(v))
}

func (s sourceTypeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var IngestRecordMUS = ingestRecordMUS{}

type ingestRecordMUS struct{}

func (s ingestRecordMUS) Marshal(v IngestRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.FileName, bs[n:])
	n += ord.String.Marshal(v.FileHash, bs[n:])
	n += ord.String.Marshal(v.Library, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += SourceTypeMUS.Marshal(v.Source, bs[n:])
	n += varint.Int.Marshal(v.Vectors, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.IngestedAt, bs[n:])
}

func (s ingestRecordMUS) Unmarshal(bs []byte) (v IngestRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.FileName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FileHash, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Library, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Source, n1, err = SourceTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vectors, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IngestedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s ingestRecordMUS) Size(v IngestRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.FileName)
	size += ord.String.Size(v.FileHash)
	size += ord.String.Size(v.Library)
	size += ord.String.Size(v.Title)
	size += SourceTypeMUS.Size(v.Source)
	size += varint.Int.Size(v.Vectors)
	return size + raw.TimeUnixMicro.Size(v.IngestedAt)
}

func (s ingestRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SourceTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
