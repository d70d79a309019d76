// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/rpc/certificate"
	"github.com/bitmark-inc/slotd/sale"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	defaultAccountsCount = 100
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "fingerprint", "fp":
		return false // defer processing until configuration is read

	case "global", "g", "round", "r", "solvency", "s", "accounts", "a":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - display the SHA3-256 fingerprint of the RPC certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  global                     (g)      - display the sale owner, price, fee and round counter\n")
		fmt.Printf("\n")

		fmt.Printf("  round                      (r)      - display the current round\n")
		fmt.Printf("\n")

		fmt.Printf("  solvency                   (s)      - compare the vault balance with what buyers are owed\n")
		fmt.Printf("\n")

		fmt.Printf("  accounts [COUNT [AFTER]]   (a)      - list settlement ledgers\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(os.Stdout, options)

	case "fingerprint", "fp":
		certificateText, _, err := certificate.Read(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			exitwithstatus.Message("error: cannot read certificate: %q  error: %s", options.ClientRPC.Certificate, err)
		}
		fingerprint, err := certificate.FingerprintPEM(certificateText)
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate: %q  error: %s", options.ClientRPC.Certificate, err)
		}
		fmt.Printf("SHA3-256 fingerprint: %x\n", fingerprint)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the sale records are available so these commands can read them
func processDataCommand(log *logger.L, arguments []string, engine *sale.Engine) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	var item interface{}
	var err error

	switch command {

	case "start", "run":
		return false // continue processing

	case "global", "g":
		item, err = engine.Global()

	case "round", "r":
		item, err = engine.Round()

	case "solvency", "s":
		item, err = engine.Solvency()

	case "accounts", "a":
		count := defaultAccountsCount
		if len(arguments) > 0 {
			count, err = strconv.Atoi(arguments[0])
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
		}
		var after *account.Account
		if len(arguments) > 1 {
			after, err = account.AccountFromBase58(arguments[1])
			if nil != err {
				exitwithstatus.Message("error in account: %s", err)
			}
		}
		item, err = engine.Accounts(after, count)

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	if nil != err {
		log.Errorf("%s error: %s", command, err)
		exitwithstatus.Message("%s error: %s", command, err)
	}
	printJSON(os.Stdout, item)

	// indicate processing complete and perform normal exit from main
	return true
}

// print indented JSON followed by a newline
func printJSON(w io.Writer, item interface{}) {
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	fmt.Fprintf(w, "%s\n", b)
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
