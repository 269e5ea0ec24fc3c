/*
Package mailmerge provides a mail merge campaign tool.

A campaign is described by a config file naming the sender, the subject and
the recipients together with per-recipient metadata, plus a text template
with %KEY% placeholders. Before anything is sent, mailmerge verifies that:
  - the config is well-formed and every email address in it is valid
  - every recipient's metadata parses unambiguously
  - every placeholder the template uses is supplied for every recipient

# Configuration

The config is an INI (or YAML) file with a general and a recipients section:

	[general]
	From="Frodo Baggins" <rts@example.com>
	Cc=weirdo@nsb.gov, cc@example.com
	subject=Hello %_FN%!
	[recipients]
	jd@example.com=John Doe Jr.|ORG:-EFF|TITLE:-PhD

The placeholders _EA, _FN, _LN, _TN and _TV are filled in automatically with
the recipient's email, first name, last name and the tool's name and version.

# Usage

	mailmerge check               # Validate config and template
	mailmerge preview             # Render the merged messages
	mailmerge sample config       # Print a sample config
	mailmerge sample template     # Print a sample template
*/
package mailmerge

// Name is the tool name
const Name = "mailmerge"

// Version is the current version of mailmerge
const Version = "0.2.0"

// BuildDate is set at build time
var BuildDate string

// GitCommit is set at build time
var GitCommit string
