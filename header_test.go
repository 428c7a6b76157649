package main

import (
	"testing"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Helper function to create test FASTX records
func createTestRecord(name string, sequence string, quality string) *fastx.Record {
	return &fastx.Record{
		Name: []byte(name),
		Seq: &seq.Seq{
			Seq:  []byte(sequence),
			Qual: []byte(quality),
		},
	}
}

// Test read-key derivation from header conventions
func TestKeyFromHeader(t *testing.T) {
	tests := []struct {
		name string
		id   string
		desc string
		want Key
	}{
		{
			name: "Legacy first-mate suffix",
			id:   "read1/1",
			want: Key{Qname: "read1", No: FirstMate},
		},
		{
			name: "Legacy second-mate suffix",
			id:   "read1/2",
			want: Key{Qname: "read1", No: SecondMate},
		},
		{
			name: "Unrecognized suffix digit",
			id:   "read1/3",
			want: Key{Qname: "read1/3", No: Unpaired},
		},
		{
			name: "Suffix on qname with internal slash",
			id:   "lane3/tile42/1",
			want: Key{Qname: "lane3/tile42", No: FirstMate},
		},
		{
			name: "Casava first mate",
			id:   "M00001:12:000000000-A1B2C:1:1101:15589:1332",
			desc: "1:N:0:ATCACG",
			want: Key{Qname: "M00001:12:000000000-A1B2C:1:1101:15589:1332", No: FirstMate},
		},
		{
			name: "Casava second mate, filtered flag",
			id:   "M00001:12:000000000-A1B2C:1:1101:15589:1332",
			desc: "2:Y:18:ATCACG",
			want: Key{Qname: "M00001:12:000000000-A1B2C:1:1101:15589:1332", No: SecondMate},
		},
		{
			name: "Legacy suffix wins over description",
			id:   "read1/2",
			desc: "1:N:0:ATCACG",
			want: Key{Qname: "read1", No: SecondMate},
		},
		{
			name: "Description without mate field",
			id:   "read1",
			desc: "length=150",
			want: Key{Qname: "read1", No: Unpaired},
		},
		{
			name: "Bare identifier",
			id:   "SRR000001.123",
			want: Key{Qname: "SRR000001.123", No: Unpaired},
		},
		{
			name: "Suffix-only identifier is not a mate suffix",
			id:   "/1",
			want: Key{Qname: "/1", No: Unpaired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromHeader(tt.id, tt.desc); got != tt.want {
				t.Errorf("KeyFromHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Test key derivation from full record headers
func TestRecordKey(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Key
	}{
		{
			name:   "Header with Casava description",
			header: "M00001:12:A1B2C:1:1101:15589:1332 2:N:0:ATCACG",
			want:   Key{Qname: "M00001:12:A1B2C:1:1101:15589:1332", No: SecondMate},
		},
		{
			name:   "Header with legacy suffix and free-text description",
			header: "read7/1 some description",
			want:   Key{Qname: "read7", No: FirstMate},
		},
		{
			name:   "Plain header",
			header: "SRR000001.123",
			want:   Key{Qname: "SRR000001.123", No: Unpaired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := createTestRecord(tt.header, "ACGT", "IIII")
			if got := recordKey(record); got != tt.want {
				t.Errorf("recordKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Test header rewriting
func TestRetagRecord(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		keepDesc bool
		want     string
	}{
		{
			name:   "Legacy suffix normalized",
			header: "read7/1 1:N:0:ATCACG",
			want:   "read7/1",
		},
		{
			name:     "Description preserved",
			header:   "read7/2 some description",
			keepDesc: true,
			want:     "read7/2 some description",
		},
		{
			name:   "Unpaired record gains explicit read number",
			header: "SRR000001.123",
			want:   "SRR000001.123/0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := createTestRecord(tt.header, "ACGT", "IIII")
			retagRecord(record, recordKey(record), tt.keepDesc)
			if got := string(record.Name); got != tt.want {
				t.Errorf("record.Name = %q, want %q", got, tt.want)
			}
		})
	}
}
