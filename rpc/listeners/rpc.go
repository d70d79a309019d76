// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/counter"
	"github.com/bitmark-inc/slotd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
	minBandwidth       = 1000000 // 1Mbps
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Bandwidth          float64  `gluamapper:"bandwidth" json:"bandwidth"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	bandwidth       *rate.Limiter
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - create a JSON-RPC listener from its configuration
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if configuration.Bandwidth < minBandwidth {
		log.Errorf("invalid %s bandwidth: %f bps < 1Mbps", logName, configuration.Bandwidth)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	// bandwidth is in bits per second, shared by all connections
	bytesPerSecond := configuration.Bandwidth / 8
	r := &rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		bandwidth:       rate.NewLimiter(rate.Limit(bytesPerSecond), int(bytesPerSecond)),
		listenIPAndPort: append([]string{}, configuration.Listen...),
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// validate all listen addresses
	var err error
	r.ipType, err = parseListenAddress(r.listenIPAndPort, r.log)
	if nil != err {
		return nil, err
	}

	return r, nil
}

// Serve - start accepting on every listen address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.doServeRPC(l)
	}
	return nil
}

// Addrs - the bound addresses, resolving any port 0
func (r *rpcListener) Addrs() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addrs := make([]net.Addr, len(r.listeners))
	for i, l := range r.listeners {
		addrs[i] = l.Addr()
	}
	return addrs
}

// Close - stop accepting connections
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	var firstErr error
	for _, l := range r.listeners {
		if err := l.Close(); nil != err && nil == firstErr {
			firstErr = err
		}
	}
	r.listeners = nil
	return firstErr
}

func (r *rpcListener) doServeRPC(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("rpc.server terminated: accept error: %s", err)
			break
		}
		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("rejected connection from: %s  limit: %d", conn.RemoteAddr(), r.maxConnections)
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(&limitedConn{Conn: conn, limiter: r.bandwidth}))
			_ = conn.Close()
			r.count.Release()
		}()
	}
	_ = listen.Close()
	r.log.Info("RPC accept terminated")
}

// limitedConn - a connection whose reads share a byte rate limit
type limitedConn struct {
	net.Conn
	limiter *rate.Limiter
}

func (c *limitedConn) Read(b []byte) (int, error) {
	if burst := c.limiter.Burst(); len(b) > burst {
		b = b[:burst]
	}
	n, err := c.Conn.Read(b)
	if n > 0 {
		if waitErr := c.limiter.WaitN(context.Background(), n); nil != waitErr && nil == err {
			err = waitErr
		}
	}
	return n, err
}

func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: %s", fault.InvalidIpAddress)
			return nil, fault.InvalidIpAddress
		}
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
