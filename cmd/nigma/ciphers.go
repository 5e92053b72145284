package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MeGrimlock/nigma/adfgvx"
	"github.com/MeGrimlock/nigma/amsco"
	"github.com/MeGrimlock/nigma/cipher"
	"github.com/MeGrimlock/nigma/morse"
	"github.com/MeGrimlock/nigma/polybius"
	"github.com/MeGrimlock/nigma/quagmire"
	"github.com/MeGrimlock/nigma/shift"
	"github.com/MeGrimlock/nigma/substitution"
	"github.com/MeGrimlock/nigma/twosquare"
)

// builders maps every --cipher name to its constructor. key2 carries
// the secondary keyword (two-square, adfgvx, quagmire4) and indicator
// the quagmire4 alignment letter.
var builders = map[string]func(message, key, key2, indicator string) cipher.Cipher{
	"caesar":    func(m, k, _, _ string) cipher.Cipher { return shift.NewCaesar(m, k) },
	"rot13":     func(m, _, _, _ string) cipher.Cipher { return shift.NewRot13(m) },
	"atbash":    func(m, _, _, _ string) cipher.Cipher { return substitution.NewAtbash(m) },
	"simple":    func(m, k, _, _ string) cipher.Cipher { return substitution.NewSimple(m, k) },
	"bazeries":  func(m, k, _, _ string) cipher.Cipher { return substitution.NewBazeries(m, k) },
	"twosquare": func(m, k, k2, _ string) cipher.Cipher { return twosquare.New(m, k, k2) },
	"amsco":     func(m, k, _, _ string) cipher.Cipher { return amsco.New(m, k) },
	"polybius":  func(m, k, _, _ string) cipher.Cipher { return polybius.New(m, k) },
	"adfgvx":    func(m, k, k2, _ string) cipher.Cipher { return adfgvx.New(m, k, k2) },
	"adfgx":     func(m, k, k2, _ string) cipher.Cipher { return adfgvx.NewADFGX(m, k, k2) },
	"quagmire1": func(m, k, k2, _ string) cipher.Cipher { return quagmire.NewQuagmire1(m, k, k2) },
	"quagmire2": func(m, k, k2, _ string) cipher.Cipher { return quagmire.NewQuagmire2(m, k, k2) },
	"quagmire3": func(m, k, k2, _ string) cipher.Cipher { return quagmire.NewQuagmire3(m, k, k2) },
	"quagmire4": func(m, k, k2, ind string) cipher.Cipher {
		r := 'A'
		if ind != "" {
			r = rune(strings.ToUpper(ind)[0])
		}
		// --key carries "plainKeyword,cipherKeyword"; one keyword keys both.
		parts := strings.SplitN(k, ",", 2)
		plainKW, cipherKW := parts[0], parts[0]
		if len(parts) == 2 {
			cipherKW = parts[1]
		}

		return quagmire.NewQuagmire4(m, plainKW, cipherKW, k2, r)
	},
	"morse": func(m, _, _, _ string) cipher.Cipher { return morse.New(m) },
}

// buildCipher resolves a --cipher name, or lists the valid names.
func buildCipher(name, message, key, key2, indicator string) (cipher.Cipher, error) {
	build, ok := builders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown cipher %q (valid: %s)", name, strings.Join(cipherNames(), ", "))
	}

	return build(message, key, key2, indicator), nil
}

func cipherNames() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
