/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line.
// The functions return Logger instances which are configured with
// the necessary backends and formatters.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/mc-chess/config"
)

var out = message.NewPrinter(language.German)

var (
	standardLog *logging.Logger
	engineLog   *logging.Logger
	testLog     *logging.Logger
	xboardLog   *logging.Logger
	xboardLogFile *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	xboardLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	xboardLogFilePath = exePath + "/../logs/" + exeName + "_xboardlog.log"

	// global loggers
	standardLog = logging.MustGetLogger("standard")
	engineLog = logging.MustGetLogger("engine")
	testLog = logging.MustGetLogger("test")
	xboardLog = logging.MustGetLogger("xboard")
}

// GetLog returns an instance of a standard Logger preconfigured with a
// os.Stdout backend and a "normal" logging format (e.g. time - file - level)
func GetLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	level := logging.Level(config.LogLevel)
	standardBackEnd.SetLevel(level, "")
	standardLog.SetBackend(standardBackEnd)
	return standardLog
}

// GetEngineLog returns an instance of a standard Logger preconfigured with a
// os.Stdout backend and a "normal" logging format (e.g. time - file - level)
// for usage in the decision engine and its ponderers.
func GetEngineLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	engineBackEnd := logging.AddModuleLevel(backend1Formatter)
	level := logging.Level(config.LogLevel)
	engineBackEnd.SetLevel(level, "")
	engineLog.SetBackend(engineBackEnd)
	return engineLog
}

// GetTestLog returns an instance of a standard Logger preconfigured with a
// os.Stdout backend and a "normal" logging format (e.g. time - file - level)
func GetTestLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
	backend1Formatter := logging.NewBackendFormatter(backend1, format)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	standardBackEnd.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(standardBackEnd)
	return testLog
}

// GetXBoardLog returns an instance of a special Logger preconfigured for
// logging all xboard protocol communication to os.Stdout or file.
// Format is very simple "time XBOARD <command>".
func GetXBoardLog() *logging.Logger {
	// Stdout backend
	xboardFormat := logging.MustStringFormatter(`%{time:15:04:05.000} XBOARD %{message}`)
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, xboardFormat)
	xboardBackEnd1 := logging.AddModuleLevel(backend1Formatter)
	xboardBackEnd1.SetLevel(logging.DEBUG, "")

	// File backend
	var err error
	xboardLogFile, err = os.OpenFile(xboardLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("Logfile could not be created", err)
		xboardLog.SetBackend(xboardBackEnd1)
	} else {
		backend2 := logging.NewLogBackend(xboardLogFile, "", log.Lmsgprefix)
		backend2Formatter := logging.NewBackendFormatter(backend2, xboardFormat)
		xboardBackEnd2 := logging.AddModuleLevel(backend2Formatter)
		xboardBackEnd2.SetLevel(logging.DEBUG, "")
		multi := logging.SetBackend(xboardBackEnd1, xboardBackEnd2)
		xboardLog.SetBackend(multi)
	}

	return xboardLog
}
