/*
Package domain contains the shared vocabulary of the argument parser.

It defines the value kinds a schema element can declare, the error taxonomy
recorded while parsing tokens, the lifecycle hooks fired during a parse, and
the serializable Result snapshot used by the CLI and the network adapters.
This package is kept pure and free of external dependencies.

# Key Entities

  - Kind: the scalar type of a flag (boolean, string, integer, double).
  - ErrorCode: the category of the single error recorded by a parse.
  - ArgsError: the recorded error, rendering the user-facing message.
  - ParseHooks: callbacks for observability.
  - Result: a snapshot of a finished parse.
*/
package domain
