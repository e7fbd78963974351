package lspsync

// LSP positions count columns in UTF-16 code units while the document
// counts runes, so every outgoing column crosses this conversion.

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	count := 0
	for _, r := range s {
		if r >= 0x10000 {
			count += 2 // Surrogate pair
		} else {
			count++
		}
	}
	return count
}

// runeToUTF16 converts a rune offset within s to a UTF-16 offset.
func runeToUTF16(s string, runeOff int) int {
	if runeOff <= 0 {
		return 0
	}

	runeCount := 0
	utf16Off := 0
	for _, r := range s {
		if runeCount >= runeOff {
			break
		}
		if r >= 0x10000 {
			utf16Off += 2
		} else {
			utf16Off++
		}
		runeCount++
	}
	return utf16Off
}
