// Package config provides configuration parsing for bloxi projects.
//
// The configuration is stored in bloxi.json (or bloxi.yaml) at the project
// root. This package handles loading, saving, defaults and validation.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "metricsPath": "/metrics",
//	    "tracing": false
//	  },
//	  "page": {
//	    "title": "My app",
//	    "lang": "en",
//	    "pretty": true
//	  },
//	  "publish": {
//	    "target": "s3",
//	    "bucket": "my-assets",
//	    "prefix": "css/",
//	    "region": "eu-west-1"
//	  },
//	  "breakpoints": {
//	    "md": 800
//	  }
//	}
//
// The YAML form uses the same keys.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
