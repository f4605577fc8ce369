package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized cell record")

// CellRecordVersion is the first byte of every record
const CellRecordVersion = byte(1)

// record layout: version(1) | id length(2, little endian) | id | formula
const cellRecordHeaderSize = 3

type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(cellId string, formula string) []byte {
	serializedData := make([]byte, 0, cellRecordHeaderSize+len(cellId)+len(formula))

	serializedData = append(serializedData, CellRecordVersion)
	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(cellId)))
	serializedData = append(serializedData, cellId...)
	serializedData = append(serializedData, formula...)
	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (cellId string, formula string, err error) {
	if len(data) < cellRecordHeaderSize {
		return "", "", fmt.Errorf("%w: should be at least %d bytes (data: %v)", SerializerError, cellRecordHeaderSize, data)
	}

	if data[0] != CellRecordVersion {
		return "", "", fmt.Errorf("%w: unsupported version %d", SerializerError, data[0])
	}

	idLength := int(binary.LittleEndian.Uint16(data[1:]))
	if len(data) < cellRecordHeaderSize+idLength {
		return "", "", fmt.Errorf("%w: id size is greater than bytes amount (idSize: %d; data: %v)", SerializerError, idLength, data)
	}

	cellId = string(data[cellRecordHeaderSize : cellRecordHeaderSize+idLength])
	formula = string(data[cellRecordHeaderSize+idLength:])
	return
}
