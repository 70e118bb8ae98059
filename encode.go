/*
 * Copyright © 2024 The qrencode Authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package qrcode encodes an arbitrary byte payload into a
// standards-conformant QR Code symbol: it selects the smallest version
// and strongest error-correction level compatible with a caller-supplied
// range, builds the Reed-Solomon-protected, interleaved codeword stream,
// places it along the symbol's serpentine data path, and picks the mask
// that minimizes the standard's penalty score.
//
// This package implements byte-mode encoding only. It does not attempt
// numeric/alphanumeric/kanji segmentation, structured append, Micro QR,
// or decoding.
package qrcode

// Encode builds a QR code symbol holding data, choosing the smallest
// admissible version in [minVersion, maxVersion] and then the strongest
// ECL at or above minECL that still fits. It fails with a CapacityError
// if no admissible version exists, or an InvariantError if the version
// range or ECL is invalid.
func Encode(data []byte, minVersion, maxVersion int, minECL ECL) (*Symbol, error) {
	if minVersion < MinVersion || maxVersion > MaxVersion || minVersion > maxVersion {
		return nil, invariantf("version range [%d, %d] is outside [%d, %d]", minVersion, maxVersion, MinVersion, MaxVersion)
	}
	if minECL < Low || minECL > High {
		return nil, invariantf("unknown error correction level %v", minECL)
	}

	seg := byteSegment(data)
	segs := []segment{seg}

	version := -1
	usedBits := 0
	for v := minVersion; v <= maxVersion; v++ {
		capacityBits := dataCapacityBytes(v, minECL) * 8
		usedBits = totalBits(segs, v)
		if usedBits != -1 && usedBits <= capacityBits {
			version = v
			break
		}
	}
	if version == -1 {
		capacityBits := dataCapacityBytes(maxVersion, minECL) * 8
		return nil, &CapacityError{UsedBits: usedBits, CapacityBits: capacityBits}
	}

	ecl := minECL
	for _, candidate := range [...]ECL{Medium, Quartile, High} {
		if candidate <= ecl {
			continue
		}
		if usedBits <= dataCapacityBytes(version, candidate)*8 {
			ecl = candidate
		}
	}

	payload, err := assemblePayload(segs, version, ecl)
	if err != nil {
		return nil, err
	}

	codewords := splitAndInterleave(payload, version, ecl)

	g := newGrid(version)
	g.ecl = ecl
	g.drawFunctionPatterns()
	g.drawCodewords(codewords)
	mask := g.selectMask(ecl)

	return &Symbol{version: version, ecl: ecl, mask: mask, size: g.size, modules: g.modules}, nil
}

// assemblePayload writes the mode indicator, character count, and data
// for every segment, then the terminator, byte-alignment padding, and
// alternating 0xEC/0x11 pad bytes up to the version/ECL's data capacity.
func assemblePayload(segs []segment, version int, ecl ECL) ([]byte, error) {
	var bb bitBuffer
	for _, seg := range segs {
		if err := bb.appendBits(int(seg.mode.indicator), 4); err != nil {
			return nil, err
		}
		if err := bb.appendBits(seg.numChars, int(seg.mode.charCountWidth(version))); err != nil {
			return nil, err
		}
		bb = append(bb, seg.data...)
	}

	capacityBits := dataCapacityBytes(version, ecl) * 8
	if bb.len() > capacityBits {
		return nil, invariantf("assembled payload (%d bits) exceeds capacity (%d bits)", bb.len(), capacityBits)
	}

	if err := bb.appendBits(0, minInt(4, capacityBits-bb.len())); err != nil {
		return nil, err
	}
	if err := bb.appendBits(0, (8-bb.len()%8)%8); err != nil {
		return nil, err
	}

	for padByte := 0xEC; bb.len() < capacityBits; padByte ^= 0xEC ^ 0x11 {
		if err := bb.appendBits(padByte, 8); err != nil {
			return nil, err
		}
	}

	return bb.toBytes()
}

// splitAndInterleave partitions data into the short/long blocks defined
// by (version, ecl), appends each block's Reed-Solomon ECC codewords,
// and interleaves the result: all data codewords column-major (skipping
// the absent final byte of short blocks), then all ECC codewords
// column-major.
func splitAndInterleave(data []byte, version int, ecl ECL) []byte {
	e := ecl.tableOrdinal()
	numBlocks := numErrorCorrectionBlocks[e][version-1]
	ecPerBlock := eccCodewordsPerBlock[e][version-1]
	rawCodewords := rawCapacityBits(version) / 8

	shortBlockTotalLen := rawCodewords / numBlocks
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockDataLen := shortBlockTotalLen - ecPerBlock

	generator := rsGenerator(ecPerBlock)

	blocks := make([][]byte, numBlocks)
	pos := 0
	for i := 0; i < numBlocks; i++ {
		dataLen := shortBlockDataLen
		if i >= numShortBlocks {
			dataLen++
		}
		blockData := data[pos : pos+dataLen]
		pos += dataLen

		ecc := rsRemainder(blockData, generator)
		block := make([]byte, dataLen+ecPerBlock)
		copy(block, blockData)
		copy(block[dataLen:], ecc)
		blocks[i] = block
	}

	result := make([]byte, 0, rawCodewords)
	maxDataLen := shortBlockDataLen + 1
	for i := 0; i < maxDataLen; i++ {
		for b, block := range blocks {
			if i == shortBlockDataLen && b < numShortBlocks {
				continue // Short blocks have no data byte at this index.
			}
			result = append(result, block[i])
		}
	}
	for i := 0; i < ecPerBlock; i++ {
		for _, block := range blocks {
			result = append(result, block[len(block)-ecPerBlock+i])
		}
	}

	return result
}
