// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

package compute

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gobuffalo/packr/v2"
	"github.com/jinzhu/copier"

	"github.com/umeshgeeta/gcdengine/util"
)

// Service is the client facing facade: it wires up the dispatcher, worker
// pool and monitoring from configuration, accepts GCD jobs and exposes job
// statistics as monitoring data.
type Service struct {
	jobDispatcher *Dispatcher
	Monitor       *util.Monitor // exposed for testing purposes
	CfgInUse      *ServiceCfg
}

// Configuration for the whole service, comprising configuration for the
// Dispatcher, the worker Pool, each Worker and the Monitor.
type ServiceCfg struct {
	Dispatcher DispatcherCfg `json:"DispatcherSettings"`
	Pool       PoolCfg       `json:"PoolSettings"`
	Worker     WorkerCfg     `json:"WorkerSettings"`
	Monitoring MonitoringCfg `json:"MonitoringSettings"`
}

// Configuration about how the monitoring is done at runtime.
type MonitoringCfg struct {
	MonitoringFrequency int `json:"MonitoringFrequency"`
	MonDataChanBufSz    int `json:"ChannelBufferSize"`
}

// Name of the JSON element in any configuration file which contains a
// ServiceCfg structure value. Partial settings are not supported; the
// element carries values for all four config structures.
const ServiceCfgJsonElementName = "GcdServiceSettings"

// Name of the packaged configuration file with default values, used when
// the caller allows falling back to defaults.
const DefaultCfgFileName = "default-cfg.json"

var StaticBox *packr.Box

// Initialize the box so static files are available for consumption. The
// default configuration file is the one important static content file.
func init() {
	StaticBox = packr.New("Static Files", "./static")
}

// NewService builds a service from the named configuration file, looked up
// per the util package rules (absolute path or GO_CFG_HOME). If the file
// cannot be used and useDefault is true, the packaged default configuration
// applies; otherwise the call fails fatally.
func NewService(cfgFileName string, useDefault bool) *Service {
	cfg, err := util.ExtractCfgJsonEleFromFile(cfgFileName, ServiceCfgJsonElementName)
	cfg = handleCfgErrors(err, useDefault, cfgFileName, cfg)
	svcCfg := readServiceCfg(cfg)
	setupLogging()
	return svcCfg.MakeServiceFromCfg()
}

// MakeServiceFromCfg starts a new service structure from the given
// configuration. The caller still invokes Start on the returned service.
func (sc *ServiceCfg) MakeServiceFromCfg() *Service {
	s := new(Service)
	s.CfgInUse = sc
	s.build()
	return s
}

// CloneCfg copies the configuration in use of the given service, so a
// caller can tweak a few values and spin up a second service from it.
func (s *Service) CloneCfg() *ServiceCfg {
	clone := ServiceCfg{}
	copier.Copy(&clone, s.CfgInUse)
	return &clone
}

func handleCfgErrors(err error, useDefault bool, cfgFileName string, cfg []byte) []byte {
	if err == nil {
		return cfg
	}
	if !useDefault {
		msg := fmt.Sprintf("Invalid config file name %s and default config file not allowed. "+
			"Pass second argument true to use the default config file or fix the config file issues.\n", cfgFileName)
		fmt.Print(msg)
		log.Fatal(msg)
	}
	cfgJsonBa, err := StaticBox.Find(DefaultCfgFileName)
	if err != nil {
		msg := fmt.Sprintf("Invalid config file name %s and error %v while sourcing the default config file.\n",
			cfgFileName, err)
		fmt.Print(msg)
		log.Fatal(msg)
	}
	cfg, err = util.ExtractCfgJsonEleFromBytes(cfgJsonBa, ServiceCfgJsonElementName)
	if err != nil {
		msg := fmt.Sprintf("Error reading configuration: %v\n", err)
		fmt.Print(msg)
		log.Fatal(msg)
	}
	return cfg
}

func readServiceCfg(cfg []byte) *ServiceCfg {
	svcCfg := ServiceCfg{}
	err := json.Unmarshal(cfg, &svcCfg)
	if err != nil {
		msg := fmt.Sprintf("Error parsing configuration: %v\n", err)
		fmt.Print(msg)
		log.Fatal(msg)
	}
	return &svcCfg
}

func (s *Service) build() {
	s.jobDispatcher = NewDispatcher(s.CfgInUse.Dispatcher,
		NewPool(s.CfgInUse.Pool, s.CfgInUse.Worker))
	util.Log(fmt.Sprintf("Built gcd compute service %v", s.CfgInUse))
	s.Monitor, _ = util.NewMonitor(s.CfgInUse.Monitoring.MonitoringFrequency,
		s.CfgInUse.Monitoring.MonDataChanBufSz, s)
}

func setupLogging() {
	// If logging is already configured there is nothing to do; else we try
	// the packaged default log settings and fall back to Go's built-in
	// logging when that fails too.
	if util.IsLoggingConfigured() {
		return
	}
	logCfgJsonBa, err := StaticBox.Find(DefaultCfgFileName)
	if err != nil {
		return
	}
	logCfgBa, err := util.ExtractCfgJsonEleFromBytes(logCfgJsonBa, util.LoggingCfgJsonElementName)
	if err != nil {
		return
	}
	logCfg, err := util.FormLoggingCfg(logCfgBa)
	if err == nil {
		util.SetLoggingCfg(logCfg)
	}
}

func (s *Service) Start() {
	s.jobDispatcher.Start()
	s.Monitor.Start()
}

// Submit runs the given job through the dispatcher. For blocking jobs the
// returned response carries the GCD and the elapsed computation time.
func (s *Service) Submit(job Job) (*Response, error) {
	return s.jobDispatcher.Submit(job)
}

func (s *Service) Stop() {
	s.jobDispatcher.Stop()
	s.Monitor.Stop()
}

// Stats returns a snapshot of the dispatcher's job statistics.
func (s *Service) Stats() *Stats {
	return parseStats(s.jobDispatcher.JobStats.byteArray())
}

func (s *Service) GetData() util.Blob {
	return *(util.NewBlob(s.jobDispatcher.JobStats.byteArray()))
}

func (s *Service) Name() string {
	return "GcdComputeService"
}
